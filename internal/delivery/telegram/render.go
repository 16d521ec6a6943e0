package telegram

import (
	"fmt"

	"github.com/Ryuen4/Asmaul-Husna-Quiz/internal/domain/entities"
)

// Left-to-right mark keeps mixed Arabic/Latin lines from flipping.
const lrm = "‎"

func transliterationFor(n *entities.Name, lang string) string {
	if lang == langBengali && n.BnTransliteration != "" {
		return n.BnTransliteration
	}
	return n.Transliteration
}

func meaningFor(n *entities.Name, lang string) string {
	if lang == langBengali && n.BnMeaning != "" {
		return n.BnMeaning
	}
	return n.Meaning
}

// processName renders one catalog entry for the library view.
func processName(n *entities.Name, lang string) string {
	return fmt.Sprintf(
		"%s<b>%d.</b> %s\n<b>%s</b> — %s",
		lrm,
		n.Number,
		n.ArabicName,
		transliterationFor(n, lang),
		meaningFor(n, lang),
	)
}
