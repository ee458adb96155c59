package utils

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// moneyPrinter agrupa milhares com vírgula ("1,234.56")
var moneyPrinter = message.NewPrinter(language.English)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ParseFloat converte um texto decimal em float64, informando se o valor era válido.
// Nunca retorna erro: valores ausentes, NaN ou infinitos são tratados como inválidos.
func ParseFloat(value string) (float64, bool) {
	v := strings.TrimSpace(value)
	if v == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

// ParseFloatOrZero é a versão total de ParseFloat: qualquer falha vira 0.
func ParseFloatOrZero(value string) float64 {
	f, _ := ParseFloat(value)
	return f
}

// ParseInt64OrZero converte valores inteiros da API (ex: centavos) aceitando
// também a forma decimal "123.0". Qualquer falha vira 0.
func ParseInt64OrZero(value string) int64 {
	v := strings.TrimSpace(value)
	if v == "" {
		return 0
	}

	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		return i
	}

	f, ok := ParseFloat(v)
	// float64(math.MaxInt64) arredonda para 2^63, que já não cabe em int64
	if !ok || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0
	}

	return int64(f)
}

// FormatAmount formata com duas casas decimais, sem separador de milhar.
func FormatAmount(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "0.00"
	}

	return strconv.FormatFloat(f, 'f', 2, 64)
}

// FormatCurrency formata um valor textual vindo da API; texto não numérico vira "0.00".
func FormatCurrency(value string) string {
	f, ok := ParseFloat(value)
	if !ok {
		return "0.00"
	}

	return FormatAmount(f)
}

// FormatMoney formata com duas casas e separador de milhar.
func FormatMoney(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "0.00"
	}

	return moneyPrinter.Sprintf("%.2f", f)
}
