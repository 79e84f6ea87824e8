package admin

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	apperrors "go-gin-seat-booking/pkg/app_errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// maxDecimal NUMERIC(10,2) 四捨五入後必須小於此值
const maxDecimal = 1e8

func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	// 錯誤訊息使用 JSON 欄位名稱
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("int32", isInt32)
	_ = v.RegisterValidation("money", isMoney)
}

// isInt32 PostgreSQL INTEGER 欄位的範圍
func isInt32(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := fl.Field().Int()
		return n >= math.MinInt32 && n <= math.MaxInt32
	}
	return false
}

// isMoney PostgreSQL NUMERIC(10,2) 可存放的金額
func isMoney(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		rounded := math.Round(fl.Field().Float()*100) / 100
		return !math.IsNaN(rounded) && math.Abs(rounded) < maxDecimal
	}
	return false
}

// validate 依 binding tag 驗證，回傳第一個欄位錯誤
func validate(obj any) error {
	err := binding.Validator.ValidateStruct(obj)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fieldError(verrs[0])
	}
	return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
}

func fieldError(fe validator.FieldError) *apperrors.ValidationError {
	var msg string
	switch fe.Tag() {
	case "required":
		msg = "this field is required"
	case "email":
		msg = "enter a valid email address"
	case "max":
		if fe.Kind() == reflect.String {
			msg = fmt.Sprintf("ensure this value has at most %s characters", fe.Param())
		} else {
			msg = fmt.Sprintf("ensure this value is less than or equal to %s", fe.Param())
		}
	case "gt":
		msg = fmt.Sprintf("ensure this value is greater than %s", fe.Param())
	case "oneof":
		msg = fmt.Sprintf("%q is not a valid choice", fmt.Sprint(fe.Value()))
	case "int32":
		msg = fmt.Sprintf("ensure this value is between %d and %d", math.MinInt32, math.MaxInt32)
	case "money":
		msg = "ensure that there are no more than 10 digits in total"
	default:
		msg = fe.Error()
	}
	return apperrors.NewValidationError(fe.Field(), msg)
}
