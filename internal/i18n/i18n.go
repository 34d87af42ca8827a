package i18n

import (
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/text/language"

	"github.com/AlexYaroshenko/tgwire/internal/telegram"
)

// Supported languages: English (en), German (de), French (fr), Spanish (es), Italian (it)
var supported = map[string]map[string]string{
	"en": {
		"welcome":         "Hi %s! The bot is listening. Send /help to see what it can do.",
		"welcome_back":    "Welcome back, %s.",
		"help":            "/id shows your ids\n/remember <text> stores a note\n/recall shows it\n/forget clears it",
		"your_id":         "Chat ID: %d\nUser ID: %d",
		"remember_prompt": "What should I remember?",
		"button_keep":     "Keep",
		"button_forget":   "Forget",
		"remembered":      "Noted.",
		"recall":          "You asked me to remember: %s",
		"recall_empty":    "Nothing stored for this conversation.",
		"forgotten":       "Forgotten.",
		"unknown":         "Unknown command. Send /help.",
		"pressed":         "You picked %s",
		"member_joined":   "%s joined %s",
		"member_left":     "%s left %s",
		"bot_added":       "Bot added to %s",
		"bot_removed":     "Bot removed from %s",
		"status_title":    "Bot status",
		"status_running":  "running",
	},
	"de": {
		"welcome":         "Hallo %s! Der Bot hört zu. Sende /help, um zu sehen, was er kann.",
		"welcome_back":    "Willkommen zurück, %s.",
		"help":            "/id zeigt deine IDs\n/remember <Text> speichert eine Notiz\n/recall zeigt sie an\n/forget löscht sie",
		"your_id":         "Chat-ID: %d\nBenutzer-ID: %d",
		"remember_prompt": "Was soll ich mir merken?",
		"button_keep":     "Behalten",
		"button_forget":   "Vergessen",
		"remembered":      "Notiert.",
		"recall":          "Du wolltest dir merken: %s",
		"recall_empty":    "Für dieses Gespräch ist nichts gespeichert.",
		"forgotten":       "Vergessen.",
		"unknown":         "Unbekannter Befehl. Sende /help.",
		"pressed":         "Du hast %s gewählt",
		"member_joined":   "%s ist %s beigetreten",
		"member_left":     "%s hat %s verlassen",
		"bot_added":       "Bot zu %s hinzugefügt",
		"bot_removed":     "Bot aus %s entfernt",
		"status_title":    "Bot-Status",
		"status_running":  "läuft",
	},
	"fr": {
		"welcome":         "Bonjour %s ! Le bot vous écoute. Envoyez /help pour voir ce qu'il sait faire.",
		"welcome_back":    "Bon retour, %s.",
		"help":            "/id affiche vos identifiants\n/remember <texte> enregistre une note\n/recall l'affiche\n/forget l'efface",
		"your_id":         "ID du chat : %d\nID utilisateur : %d",
		"remember_prompt": "Que dois-je retenir ?",
		"button_keep":     "Garder",
		"button_forget":   "Oublier",
		"remembered":      "C'est noté.",
		"recall":          "Vous m'avez demandé de retenir : %s",
		"recall_empty":    "Rien n'est enregistré pour cette conversation.",
		"forgotten":       "Oublié.",
		"unknown":         "Commande inconnue. Envoyez /help.",
		"pressed":         "Vous avez choisi %s",
		"member_joined":   "%s a rejoint %s",
		"member_left":     "%s a quitté %s",
		"bot_added":       "Bot ajouté à %s",
		"bot_removed":     "Bot retiré de %s",
		"status_title":    "État du bot",
		"status_running":  "en marche",
	},
	"es": {
		"welcome":         "¡Hola %s! El bot está escuchando. Envía /help para ver lo que puede hacer.",
		"welcome_back":    "Bienvenido de nuevo, %s.",
		"help":            "/id muestra tus identificadores\n/remember <texto> guarda una nota\n/recall la muestra\n/forget la borra",
		"your_id":         "ID del chat: %d\nID de usuario: %d",
		"remember_prompt": "¿Qué debo recordar?",
		"button_keep":     "Conservar",
		"button_forget":   "Olvidar",
		"remembered":      "Anotado.",
		"recall":          "Me pediste recordar: %s",
		"recall_empty":    "No hay nada guardado para esta conversación.",
		"forgotten":       "Olvidado.",
		"unknown":         "Comando desconocido. Envía /help.",
		"pressed":         "Elegiste %s",
		"member_joined":   "%s se unió a %s",
		"member_left":     "%s salió de %s",
		"bot_added":       "Bot añadido a %s",
		"bot_removed":     "Bot eliminado de %s",
		"status_title":    "Estado del bot",
		"status_running":  "en marcha",
	},
	"it": {
		"welcome":         "Ciao %s! Il bot è in ascolto. Invia /help per vedere cosa sa fare.",
		"welcome_back":    "Bentornato, %s.",
		"help":            "/id mostra i tuoi ID\n/remember <testo> salva una nota\n/recall la mostra\n/forget la cancella",
		"your_id":         "ID chat: %d\nID utente: %d",
		"remember_prompt": "Cosa devo ricordare?",
		"button_keep":     "Tieni",
		"button_forget":   "Dimentica",
		"remembered":      "Annotato.",
		"recall":          "Mi hai chiesto di ricordare: %s",
		"recall_empty":    "Niente salvato per questa conversazione.",
		"forgotten":       "Dimenticato.",
		"unknown":         "Comando sconosciuto. Invia /help.",
		"pressed":         "Hai scelto %s",
		"member_joined":   "%s è entrato in %s",
		"member_left":     "%s ha lasciato %s",
		"bot_added":       "Bot aggiunto a %s",
		"bot_removed":     "Bot rimosso da %s",
		"status_title":    "Stato del bot",
		"status_running":  "in esecuzione",
	},
}

// codes lists the catalogue languages; the first one is the fallback.
var codes = []string{"en", "de", "fr", "es", "it"}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
	language.Italian,
})

func match(tags []language.Tag) string {
	if len(tags) == 0 {
		return codes[0]
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return codes[0]
	}
	return codes[idx]
}

func T(lang, key string) string {
	if m, ok := supported[lang]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if v, ok := supported["en"][key]; ok {
		return v
	}
	return key
}

// Tf formats the message for key with args.
func Tf(lang, key string, args ...any) string {
	return fmt.Sprintf(T(lang, key), args...)
}

// Match maps any BCP 47 code ("de-AT", "pt-BR", "") to a supported
// language, falling back to English.
func Match(langs ...string) string {
	var tags []language.Tag
	for _, l := range langs {
		if t, err := language.Parse(strings.TrimSpace(l)); err == nil {
			tags = append(tags, t)
		}
	}
	return match(tags)
}

// ForUser picks the language for a Telegram user from their client's
// language_code.
func ForUser(u *telegram.User) string {
	if u == nil {
		return "en"
	}
	return Match(telegram.Deref(u.LanguageCode))
}

func DetectLang(r *http.Request) string {
	// order: query param -> cookie -> header -> default
	if v := r.URL.Query().Get("lang"); v != "" {
		return Match(v)
	}
	if c, err := r.Cookie("lang"); err == nil && c != nil {
		return Match(c.Value)
	}
	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil {
		return codes[0]
	}
	return match(tags)
}
