package utils

import (
	"padel-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate       *validator.Validate
	phoneNumberRe  = regexp.MustCompile(constvars.RegexPhoneNumberGeneral)
	hexColorCodeRe = regexp.MustCompile(constvars.RegexHexColorCode)
	dateRe         = regexp.MustCompile(constvars.RegexDateYYYYMMDD)
)

var daysOfWeek = map[string]bool{
	"SUNDAY": true, "MONDAY": true, "TUESDAY": true, "WEDNESDAY": true,
	"THURSDAY": true, "FRIDAY": true, "SATURDAY": true,
}

var paymentMethods = map[string]bool{
	"CASH": true, "CARD": true, "TRANSFER": true, "WALLET": true,
}

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("weekday", validateWeekday)
	validate.RegisterValidation("iso_datetime", validateISODateTime)
	validate.RegisterValidation("iso_date", validateISODate)
	validate.RegisterValidation("payment_method", validatePaymentMethod)
	validate.RegisterValidation("hex_color", validateHexColor)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return phoneNumberRe.MatchString(fl.Field().String())
}

func validateWeekday(fl validator.FieldLevel) bool {
	return daysOfWeek[strings.ToUpper(fl.Field().String())]
}

func validateISODateTime(fl validator.FieldLevel) bool {
	_, err := ParseISOTime(fl.Field().String(), nil)
	return err == nil
}

func validateISODate(fl validator.FieldLevel) bool {
	return dateRe.MatchString(fl.Field().String())
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	return paymentMethods[fl.Field().String()]
}

func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorCodeRe.MatchString(fl.Field().String())
}
