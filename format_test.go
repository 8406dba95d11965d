package roadlocale_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BlackRoad-OS/roadlocale"
)

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	t.Run("default separators", func(t *testing.T) {
		t.Parallel()
		f := roadlocale.NewFormatter(nil)
		require.Equal(t, "1,234,567", f.FormatNumber(1234567, 0))
		require.Equal(t, "1,234.50", f.FormatNumber(1234.5, 2))
		require.Equal(t, "999", f.FormatNumber(999, 0))
		require.Equal(t, "0.25", f.FormatNumber(0.25, 2))
	})

	t.Run("locale separators do not collide", func(t *testing.T) {
		t.Parallel()
		f := roadlocale.NewFormatter(roadlocale.NewLocale("es", "es",
			roadlocale.WithDecimalSeparator(","),
			roadlocale.WithThousandsSeparator("."),
		))
		require.Equal(t, "1.234,5", f.FormatNumber(1234.5, 1))
		require.Equal(t, "1.000.000,00", f.FormatNumber(1000000, 2))
	})

	t.Run("negative numbers keep the sign", func(t *testing.T) {
		t.Parallel()
		f := roadlocale.NewFormatter(nil)
		require.Equal(t, "-1,234.50", f.FormatNumber(-1234.5, 2))
	})

	t.Run("FormatDecimal is FormatNumber with explicit places", func(t *testing.T) {
		t.Parallel()
		f := roadlocale.NewFormatter(nil)
		require.Equal(t, "3.142", f.FormatDecimal(3.14159, 3))
	})
}

func TestFormatCurrency(t *testing.T) {
	t.Parallel()

	t.Run("symbol-first layout", func(t *testing.T) {
		t.Parallel()
		f := roadlocale.NewFormatter(roadlocale.NewLocale("en", "en",
			roadlocale.WithCurrencySymbol("€"),
		))
		require.Equal(t, "€12.30", f.FormatCurrency(12.3))
	})

	t.Run("negative sign wraps the whole string", func(t *testing.T) {
		t.Parallel()
		f := roadlocale.NewFormatter(roadlocale.NewLocale("en", "en",
			roadlocale.WithCurrencySymbol("€"),
		))
		require.Equal(t, "-€12.30", f.FormatCurrency(-12.3))
	})

	t.Run("symbol-after layout", func(t *testing.T) {
		t.Parallel()
		f := roadlocale.NewFormatter(roadlocale.LocaleDeDE())
		require.Equal(t, "1.234,50 €", f.FormatCurrency(1234.5))
		require.Equal(t, "-1.234,50 €", f.FormatCurrency(-1234.5))
	})

	t.Run("symbol override", func(t *testing.T) {
		t.Parallel()
		f := roadlocale.NewFormatter(nil)
		require.Equal(t, "£9.99", f.FormatCurrency(9.99, "£"))
	})
}

func TestFormatDateTime(t *testing.T) {
	t.Parallel()

	moment := time.Date(2026, time.March, 7, 14, 30, 45, 0, time.UTC)

	t.Run("date uses only the date portion", func(t *testing.T) {
		t.Parallel()
		f := roadlocale.NewFormatter(roadlocale.NewLocale("en", "en"))
		require.Equal(t, "2026-03-07", f.FormatDate(moment))
	})

	t.Run("time and datetime layouts", func(t *testing.T) {
		t.Parallel()
		f := roadlocale.NewFormatter(roadlocale.NewLocale("en", "en"))
		require.Equal(t, "14:30:45", f.FormatTime(moment))
		require.Equal(t, "2026-03-07 14:30:45", f.FormatDateTime(moment))
	})

	t.Run("locale-specific layouts", func(t *testing.T) {
		t.Parallel()
		f := roadlocale.NewFormatter(roadlocale.LocaleDeDE())
		require.Equal(t, "07.03.2026", f.FormatDate(moment))
		require.Equal(t, "14:30", f.FormatTime(moment))
	})
}

func TestLocaleDefaults(t *testing.T) {
	t.Parallel()

	l := roadlocale.NewLocale("en-US", "en")
	require.Equal(t, "en-US", l.Code())
	require.Equal(t, "en", l.Language())
	require.Equal(t, "en-US", l.Name())
	require.Equal(t, roadlocale.DirectionLTR, l.Direction())
	require.Equal(t, "ltr", l.Direction().String())

	ar := roadlocale.LocaleArSA()
	require.Equal(t, roadlocale.DirectionRTL, ar.Direction())
	require.Equal(t, "rtl", ar.Direction().String())
	require.Equal(t, "SA", ar.Region())
}
