package server

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var locales embed.FS

var supported = []language.Tag{language.English, language.Hindi}

const langKey = "lang"

// translator picks response language for a request and localizes messages.
type translator struct {
	bundle  *i18n.Bundle
	matcher language.Matcher
}

func newTranslator(defaultLang string) (*translator, error) {
	def, err := language.Parse(defaultLang)
	if err != nil {
		return nil, fmt.Errorf("bad default language %q: %w", defaultLang, err)
	}

	bundle := i18n.NewBundle(def)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	for _, tag := range supported {
		name := "locales/" + tag.String() + ".json"
		if _, err := bundle.LoadMessageFileFS(locales, name); err != nil {
			return nil, fmt.Errorf("unable to load messages from %s: %w", name, err)
		}
	}

	// matcher falls back to its first tag
	tags := []language.Tag{def}
	for _, tag := range supported {
		if tag != def {
			tags = append(tags, tag)
		}
	}
	return &translator{bundle: bundle, matcher: language.NewMatcher(tags)}, nil
}

// negotiate returns base language for explicit "lang" query parameter or
// Accept-Language header.
func (t *translator) negotiate(query, header string) string {
	tag, _ := language.MatchStrings(t.matcher, query, header)
	base, _ := tag.Base()
	return base.String()
}

// Language middleware stores negotiated language in request context.
func (t *translator) Language() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := t.negotiate(c.Query("lang"), c.GetHeader("Accept-Language"))
		c.Set(langKey, lang)
		c.Header("Content-Language", lang)
		c.Next()
	}
}

func (t *translator) localize(c *gin.Context, id string, data map[string]string) string {
	loc := i18n.NewLocalizer(t.bundle, c.GetString(langKey))
	msg, err := loc.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		return id
	}
	return msg
}
