package weather

import "strings"

// DefaultEmoji is used when no keyword matches the description
const DefaultEmoji = "📌"

type emojiRule struct {
	keywords []string
	emoji    string
}

// Order matters: the first rule with a keyword contained in the description wins.
var emojiRules = []emojiRule{
	{keywords: []string{"clear", "despejado", "cielo claro"}, emoji: "☀️"},
	{keywords: []string{"cloud", "nube", "nublado", "nubosidad"}, emoji: "☁️"},
	{keywords: []string{"rain", "lluvia"}, emoji: "🌧️"},
	{keywords: []string{"drizzle", "llovizna"}, emoji: "🌦️"},
	{keywords: []string{"thunder", "tormenta"}, emoji: "⛈️"},
	{keywords: []string{"snow", "nieve", "nevada"}, emoji: "❄️"},
	{keywords: []string{"mist", "fog", "niebla", "bruma"}, emoji: "🌫️"},
}

// EmojiFor picks an emoji from a weather description
func EmojiFor(description string) string {
	d := strings.ToLower(description)
	for _, rule := range emojiRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(d, keyword) {
				return rule.emoji
			}
		}
	}
	return DefaultEmoji
}
