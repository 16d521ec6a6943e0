package telegram

// Supported display languages. Two static label sets, nothing more.
const (
	langEnglish = "en"
	langBengali = "bn"
)

// labels holds every user-facing string that differs between the two
// display languages.
type labels struct {
	ChooseLevel   string
	Unlimited     string
	Questions     string
	Best          string
	Preparing     string
	QuestionOf    string
	Answered      string
	TimeLeft      string
	Prev          string
	Next          string
	Submit        string
	Cancel        string
	Cancelled     string
	NoActiveQuiz  string
	TimeUp        string
	Report        string
	Mastery       string
	Commendable   string
	Growth        string
	CorrectOf     string
	Analysis      string
	Chosen        string
	Empty         string
	NoBestScores  string
	BestHeader    string
	LangSwitched  string
	SearchUsage   string
	SearchNothing string
}

var labelsEN = labels{
	ChooseLevel:   "Select exam module",
	Unlimited:     "unlimited",
	Questions:     "attributes",
	Best:          "best",
	Preparing:     "Preparing your exam…",
	QuestionOf:    "Question",
	Answered:      "Answered",
	TimeLeft:      "Time left",
	Prev:          "◀️ Previous",
	Next:          "Next ▶️",
	Submit:        "📤 Submit exam",
	Cancel:        "✖️ Exit",
	Cancelled:     "Exam discarded. Nothing was recorded.",
	NoActiveQuiz:  "No exam in progress. Use /quiz to start one.",
	TimeUp:        "⏱ Time is up! The exam was submitted automatically.",
	Report:        "Assessment final report",
	Mastery:       "Excellent mastery",
	Commendable:   "Commendable",
	Growth:        "Room for growth",
	CorrectOf:     "correct matches",
	Analysis:      "Analysis",
	Chosen:        "chosen",
	Empty:         "empty",
	NoBestScores:  "No exams finished yet. Use /quiz to take one.",
	BestHeader:    "🏆 Best scores",
	LangSwitched:  "Language switched to English.",
	SearchUsage:   "Usage: /find <text> — searches transliterations and meanings.",
	SearchNothing: "Nothing found in the library.",
}

var labelsBN = labels{
	ChooseLevel:   "পরীক্ষার ধরন নির্বাচন করুন",
	Unlimited:     "সীমাহীন",
	Questions:     "নাম",
	Best:          "সেরা",
	Preparing:     "পরীক্ষা প্রস্তুত করা হচ্ছে…",
	QuestionOf:    "প্রশ্ন",
	Answered:      "উত্তর দেওয়া হয়েছে",
	TimeLeft:      "সময় বাকি",
	Prev:          "◀️ পূর্ববর্তী",
	Next:          "পরবর্তী ▶️",
	Submit:        "📤 জমা দিন",
	Cancel:        "✖️ প্রস্থান",
	Cancelled:     "পরীক্ষা বাতিল করা হয়েছে। কিছুই সংরক্ষণ হয়নি।",
	NoActiveQuiz:  "কোনো চলমান পরীক্ষা নেই। শুরু করতে /quiz ব্যবহার করুন।",
	TimeUp:        "⏱ সময় শেষ! পরীক্ষাটি স্বয়ংক্রিয়ভাবে জমা হয়েছে।",
	Report:        "পরীক্ষার ফলাফল",
	Mastery:       "চমৎকার দক্ষতা",
	Commendable:   "প্রশংসনীয়",
	Growth:        "উন্নতির অবকাশ আছে",
	CorrectOf:     "সঠিক উত্তর",
	Analysis:      "বিশ্লেষণ",
	Chosen:        "নির্বাচিত",
	Empty:         "খালি",
	NoBestScores:  "এখনো কোনো পরীক্ষা শেষ হয়নি। /quiz দিয়ে শুরু করুন।",
	BestHeader:    "🏆 সেরা স্কোর",
	LangSwitched:  "ভাষা বাংলায় পরিবর্তন করা হয়েছে।",
	SearchUsage:   "ব্যবহার: /find <টেক্সট>",
	SearchNothing: "লাইব্রেরিতে কিছু পাওয়া যায়নি।",
}

func labelsFor(lang string) labels {
	if lang == langBengali {
		return labelsBN
	}
	return labelsEN
}

// Language-independent messages.
const (
	msgWelcome = `<b>Assalamu alaikum!</b> 🌙

This bot helps you memorize the 99 Names of Allah (Asmaul Husna).

/quiz — take an exam
/all — browse the library
/find — search the library
/best — your best scores
/lang — switch English / বাংলা
/help — how it works

Send a number between 1 and 99 to look up a single name.`

	msgHelp = `<b>How it works</b>

An exam asks multiple choice questions: for each Arabic name you pick the correct meaning out of four options. You can move between questions and change answers until you submit.

<b>Modules</b>
• easy — 10 questions, no time limit
• medium — 25 questions, 5 minutes
• hard — 50 questions, 10 minutes

When a timed exam runs out of time it is submitted automatically with the answers given so far. Unanswered questions count as incorrect. Your best score per module is saved on this device only.`

	msgNameUnavailable     = "The names are unavailable right now, please try again later."
	msgIncorrectNameNumber = "Please send a number, e.g. 42."
	msgOutOfRangeNumber    = "The number must be between 1 and 99."
	msgQuizUnavailable     = "The exam cannot be started right now, please try again later."
)
