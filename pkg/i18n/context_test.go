package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/insomniacure/insomnia/pkg/i18n"
)

func TestLocaleFromContext(t *testing.T) {
	t.Parallel()

	lang, format := i18n.LocaleFromContext(context.Background())
	require.Equal(t, i18n.DefaultLang, lang)
	require.NotNil(t, format)

	de := i18n.FormatDeDE()
	ctx := i18n.WithLocale(context.Background(), "de-DE", de)
	lang, format = i18n.LocaleFromContext(ctx)
	require.Equal(t, "de-DE", lang)
	require.Same(t, de, format)
}

func TestLanguagesFromContext(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{i18n.DefaultLang}, i18n.LanguagesFromContext(context.Background()))

	ctx := i18n.WithLanguages(context.Background(), []string{"en-US", "de-DE"})
	require.Equal(t, []string{"en-US", "de-DE"}, i18n.LanguagesFromContext(ctx))
}
