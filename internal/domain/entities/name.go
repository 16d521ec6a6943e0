// Package entities contains domain entities used across the application.
package entities

// Name represents one of the 99 names of Allah from the Asma-ul-Husna.
// It includes the Arabic name, its transliteration, the English meaning,
// and the Bengali transliteration/meaning pair used by the language toggle.
type Name struct {
	Number            int    `json:"number"`             // number of the name (from 1 to 99)
	ArabicName        string `json:"name"`               // Arabic name of Allah
	Transliteration   string `json:"transliteration"`    // transliteration of the Arabic name
	Meaning           string `json:"meaning"`            // English meaning of the name
	BnTransliteration string `json:"bn_transliteration"` // Bengali transliteration
	BnMeaning         string `json:"bn_meaning"`         // Bengali meaning
}
