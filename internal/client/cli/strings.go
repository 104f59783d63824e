package cli

const instructions = "Over the last 2 weeks, how often have you been bothered by any of the following problems?"

var questions = [...]string{
	"Little interest or pleasure in doing things",
	"Feeling down, depressed, or hopeless",
	"Trouble falling or staying asleep, or sleeping too much",
	"Feeling tired or having little energy",
	"Poor appetite or overeating",
	"Feeling bad about yourself - or that you are a failure or have let yourself or your family down",
	"Trouble concentrating on things, such as reading the newspaper or watching television",
	"Moving or speaking so slowly that other people could have noticed? Or the opposite - being so fidgety or restless that you have been moving around a lot more than usual",
	"Thoughts that you would be better off dead or of hurting yourself in some way",
}

var options = [...]string{
	"Not at all",
	"Several days",
	"More than half the days",
	"Nearly every day",
}

const (
	nudgeTitle = "Consider Seeking Support"
	nudgeText  = "Your score indicates you may be experiencing moderate depression symptoms. Consider speaking with a healthcare provider about your feelings."

	crisisTitle    = "Need Immediate Help?"
	escalationText = "Your score indicates you may be experiencing significant distress. We strongly encourage you to reach out for support. If you're in immediate danger, please call 111."
	crisisText     = "If you're in immediate danger or experiencing a crisis:"

	consentText = `Privacy
Your answers are stored on this device. If you sign in and turn on cloud sync,
your results are also kept in your account so you can see them on other devices.
You can export or delete your data at any time.`
)

var crisisContacts = [...]string{
	"111  Emergency Services",
	"0800 543 354  Lifeline",
	"1737  Need to Talk? (call or text)",
}
