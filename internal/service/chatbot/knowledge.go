package chatbot

import "strings"

type topic struct {
	keyword string
	answer  string
}

// knowledgeBase is matched in order; the first keyword contained in the
// query wins.
var knowledgeBase = []topic{
	{"leave policy", "Employees are entitled to 12 days of casual leave, 10 days of sick leave, and 15 days of annual leave per year."},
	{"attendance policy", "Standard working hours are 9 AM to 6 PM. Late arrivals beyond 15 minutes will be marked as late."},
	{"holidays", "Public holidays include New Year, Independence Day, Gandhi Jayanti, Diwali, and Christmas."},
	{"grievance procedure", "Grievances can be submitted through the portal and will be reviewed within 3 business days."},
	{"salary policy", "Salaries are processed on the last working day of each month."},
	{"dress code", "Business casual attire is required. Fridays allow smart casual clothing."},
	{"remote work", "Remote work is allowed up to 2 days per week with manager approval."},
	{"training programs", "Various skill development programs are available quarterly."},
	{"performance review", "Annual performance reviews are conducted in December."},
	{"benefits", "Medical insurance, provident fund, and meal allowances are provided."},
}

const (
	greetingAnswer = "Hello! I'm your HR Assistant. I can help you with leave policies, attendance, holidays, grievances, and more. What would you like to know?"
	helpAnswer     = "I can assist you with: Leave Policy, Attendance Policy, Holidays, Grievance Procedure, Salary Policy, Dress Code, Remote Work, Training Programs, Performance Reviews, and Benefits. Just ask me about any of these topics!"
	defaultAnswer  = "I'm sorry, I don't have information about that. Please try asking about leave policy, attendance, holidays, grievances, or other HR topics. Type \"help\" to see what I can assist with."
)

// Respond maps a free-text query to a canned answer by case-insensitive
// substring match. Topics take precedence over greetings, greetings over help.
func Respond(query string) string {
	q := strings.ToLower(query)

	for _, t := range knowledgeBase {
		if strings.Contains(q, t.keyword) {
			return t.answer
		}
	}

	if strings.Contains(q, "hello") || strings.Contains(q, "hi") {
		return greetingAnswer
	}
	if strings.Contains(q, "help") {
		return helpAnswer
	}
	return defaultAnswer
}
