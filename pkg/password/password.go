package password

import (
	"strings"
	"unicode"
)

// Reglas de la política de contraseñas: mínimo 8 caracteres, al menos una mayúscula,
// una minúscula y un dígito.
const (
	RuleMinLength = "at least 8 characters"
	RuleUppercase = "at least one uppercase letter"
	RuleLowercase = "at least one lowercase letter"
	RuleDigit     = "at least one digit"
)

// Validate devuelve todas las reglas que la contraseña incumple, en orden fijo.
// Slice vacío = contraseña válida.
func Validate(pw string) []string {
	var violations []string

	if len(pw) < 8 {
		violations = append(violations, RuleMinLength)
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper {
		violations = append(violations, RuleUppercase)
	}
	if !hasLower {
		violations = append(violations, RuleLowercase)
	}
	if !hasDigit {
		violations = append(violations, RuleDigit)
	}

	return violations
}

// PolicyMessage arma el mensaje combinado con todas las reglas incumplidas.
// Devuelve "" si la contraseña es válida.
func PolicyMessage(pw string) string {
	violations := Validate(pw)
	if len(violations) == 0 {
		return ""
	}
	return "Password must contain " + strings.Join(violations, ", ") + "."
}
