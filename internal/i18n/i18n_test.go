package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AlexYaroshenko/tgwire/internal/telegram"
)

func TestCatalogueComplete(t *testing.T) {
	for _, lang := range codes {
		for key := range supported["en"] {
			_, ok := supported[lang][key]
			assert.True(t, ok, "%s is missing %q", lang, key)
		}
	}
}

func TestT(t *testing.T) {
	assert.Equal(t, "Vergessen.", T("de", "forgotten"))
	assert.Equal(t, "Forgotten.", T("pt", "forgotten"), "unknown language falls back to English")
	assert.Equal(t, "no_such_key", T("fr", "no_such_key"))
	assert.Equal(t, "Chat ID: 1\nUser ID: 2", Tf("en", "your_id", 1, 2))
}

func TestMatch(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{[]string{"de"}, "de"},
		{[]string{"de-AT"}, "de"},
		{[]string{"FR"}, "fr"},
		{[]string{"es-419"}, "es"},
		{[]string{"it-IT"}, "it"},
		{[]string{"pt-BR"}, "en"},
		{[]string{""}, "en"},
		{[]string{"not a tag!"}, "en"},
		{nil, "en"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Match(tt.in...), "Match(%q)", tt.in)
	}
}

func TestForUser(t *testing.T) {
	assert.Equal(t, "en", ForUser(nil))
	assert.Equal(t, "en", ForUser(&telegram.User{}))
	assert.Equal(t, "fr", ForUser(&telegram.User{LanguageCode: telegram.Ptr("fr-CA")}))
}

func TestDetectLang(t *testing.T) {
	tests := []struct {
		name  string
		setup func(r *http.Request)
		want  string
	}{
		{"default", func(*http.Request) {}, "en"},
		{"query", func(r *http.Request) { r.URL.RawQuery = "lang=it" }, "it"},
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "lang", Value: "es"}) }, "es"},
		{"header", func(r *http.Request) { r.Header.Set("Accept-Language", "ru;q=0.9, de-CH;q=0.8") }, "de"},
		{"header unsupported", func(r *http.Request) { r.Header.Set("Accept-Language", "ja") }, "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/status", nil)
			tt.setup(r)
			assert.Equal(t, tt.want, DetectLang(r))
		})
	}
}
