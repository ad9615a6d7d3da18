package validation

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"reflect"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/jayden648/shoesclean/internal/lib/apperr"
	"github.com/jayden648/shoesclean/internal/models"
)

const (
	msgName        = "Name is required and must be a non-empty string"
	msgPrice       = "Price is required and must be a non-negative number"
	msgDescription = "Description must be a string"
	msgBody        = "Invalid JSON body"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// servicePayload сырое тело запроса. duration_minutes принимается любым
// JSON-значением: невалидная длительность отбрасывается, а не отклоняется.
type servicePayload struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price"`
	DurationMinutes any      `json:"duration_minutes"`
}

type productPayload struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

// DecodeService читает и нормализует тело запроса услуги.
//
// Правила: name строка, непустая после trim; price число >= 0;
// description обрезается, пустая строка превращается в nil;
// duration_minutes сохраняется только если это положительное целое.
func DecodeService(r io.Reader) (models.ServiceRecord, error) {
	var p servicePayload
	mistyped, err := decode(r, &p)
	if err != nil {
		return models.ServiceRecord{}, err
	}

	name, err := requireName(p.Name)
	if err != nil {
		return models.ServiceRecord{}, err
	}
	price, err := requirePrice(p.Price)
	if err != nil {
		return models.ServiceRecord{}, err
	}
	if mistyped == "description" {
		return models.ServiceRecord{}, apperr.InvalidPayload("description", msgDescription)
	}

	rec := models.ServiceRecord{
		Name:            name,
		Description:     optionalText(p.Description),
		Price:           price,
		DurationMinutes: positiveWhole(p.DurationMinutes),
	}
	if err := check(rec); err != nil {
		return models.ServiceRecord{}, err
	}
	return rec, nil
}

// DecodeProduct читает и нормализует тело запроса товара.
func DecodeProduct(r io.Reader) (models.ProductRecord, error) {
	var p productPayload
	mistyped, err := decode(r, &p)
	if err != nil {
		return models.ProductRecord{}, err
	}

	name, err := requireName(p.Name)
	if err != nil {
		return models.ProductRecord{}, err
	}
	price, err := requirePrice(p.Price)
	if err != nil {
		return models.ProductRecord{}, err
	}
	if mistyped == "description" {
		return models.ProductRecord{}, apperr.InvalidPayload("description", msgDescription)
	}

	rec := models.ProductRecord{
		Name:        name,
		Description: optionalText(p.Description),
		Price:       price,
	}
	if err := check(rec); err != nil {
		return models.ProductRecord{}, err
	}
	return rec, nil
}

// decode разбирает JSON. Поле неверного типа остаётся нулевым, его имя
// возвращается в mistyped, чтобы проверки шли в порядке name, price, description.
func decode(r io.Reader, dst any) (mistyped string, err error) {
	err = render.DecodeJSON(r, dst)
	if err == nil {
		return "", nil
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return typeErr.Field, nil
	}
	return "", apperr.InvalidPayload("body", msgBody)
}

func requireName(name *string) (string, error) {
	if name == nil {
		return "", apperr.InvalidPayload("name", msgName)
	}
	trimmed := strings.TrimSpace(*name)
	if trimmed == "" {
		return "", apperr.InvalidPayload("name", msgName)
	}
	return trimmed, nil
}

func requirePrice(price *float64) (float64, error) {
	if price == nil || *price < 0 || math.IsNaN(*price) {
		return 0, apperr.InvalidPayload("price", msgPrice)
	}
	return *price, nil
}

func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func positiveWhole(v any) *int {
	f, ok := v.(float64)
	if !ok || f <= 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return nil
	}
	n := int(f)
	return &n
}

func check(rec any) error {
	err := validate.Struct(rec)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "price":
			return apperr.InvalidPayload("price", msgPrice)
		case "name":
			return apperr.InvalidPayload("name", msgName)
		default:
			return apperr.InvalidPayload(verrs[0].Field(), "Invalid field "+verrs[0].Field())
		}
	}
	return apperr.InvalidPayload("body", msgBody)
}
