package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	personNameRegexp = regexp.MustCompile(`^[\p{L}\p{M}][\p{L}\p{M} .'-]*$`)
	thaiIDCardRegexp = regexp.MustCompile(`^\d \d{4} \d{5} \d{2} \d$`)
	thaiPhoneRegexp  = regexp.MustCompile(`^0\d{2}-\d{3}-\d{4}$`)
	lineIDRegexp     = regexp.MustCompile(`^[A-Za-z0-9._-]{1,50}$`)
)

// registerRules регистрирует теги, которые мы используем в struct tags
func registerRules(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"person_name":  isPersonName,
		"thai_idcard":  isThaiIDCard,
		"thai_phone":   isThaiPhone,
		"line_id":      isLineID,
		"pdpa_consent": isConsentGiven,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

// isPersonName - только буквы (в т.ч. тайские с диакритикой), пробел, точка, апостроф, дефис
func isPersonName(fl validator.FieldLevel) bool {
	return personNameRegexp.MatchString(strings.TrimSpace(fl.Field().String()))
}

// isThaiIDCard - формат "X XXXX XXXXX XX X", как его выводит автоформатирование
func isThaiIDCard(fl validator.FieldLevel) bool {
	return thaiIDCardRegexp.MatchString(fl.Field().String())
}

// isThaiPhone - формат "0XX-XXX-XXXX"
func isThaiPhone(fl validator.FieldLevel) bool {
	return thaiPhoneRegexp.MatchString(fl.Field().String())
}

func isLineID(fl validator.FieldLevel) bool {
	return lineIDRegexp.MatchString(fl.Field().String())
}

// isConsentGiven - чекбокс PDPA: браузер шлёт "on", JSON-клиенты - true/yes/1
func isConsentGiven(fl validator.FieldLevel) bool {
	switch strings.ToLower(strings.TrimSpace(fl.Field().String())) {
	case "on", "true", "yes", "1":
		return true
	}
	return false
}
