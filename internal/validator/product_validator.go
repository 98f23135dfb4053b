package validator

import (
	"context"
	"strings"

	repo "app/internal/repository"

	"github.com/go-playground/validator/v10"
)

// 商品入力。handlerのリクエストから詰め替えて渡す。
type ProductInput struct {
	Name        string  `validate:"required"`
	Description string  `validate:"max=5000"`
	Price       float64 `validate:"gte=0"`
	SupplierID  int64   `validate:"required,gt=0"`
}

// バリデーション結果はfield→メッセージのmapで返す（空＝OK）。
// 例外で流さず、呼び出し側が明示的に分岐する。
type ProductValidator struct {
	validate     *validator.Validate
	supplierRepo repo.SupplierRepository
}

// DI
func NewProductValidator(supplierRepo repo.SupplierRepository) *ProductValidator {
	return &ProductValidator{
		validate:     validator.New(),
		supplierRepo: supplierRepo,
	}
}

// Validate は形式チェックと、supplier_idの実在チェックを行う。
// 2番目の戻り値はDB障害などの内部エラー。
func (v *ProductValidator) Validate(ctx context.Context, in ProductInput) (map[string]string, error) {
	fieldErrors := make(map[string]string)

	if err := v.validate.Struct(in); err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			name := jsonFieldName(fieldErr.Field())
			fieldErrors[name] = messageFor(name, fieldErr.Tag())
		}
	}

	//形式エラーのないsupplier_idだけ実在チェックする
	if _, ok := fieldErrors["supplier_id"]; !ok {
		exists, err := v.supplierRepo.Exists(ctx, in.SupplierID)
		if err != nil {
			return nil, err
		}
		if !exists {
			fieldErrors["supplier_id"] = "The selected supplier_id is invalid."
		}
	}

	return fieldErrors, nil
}

// 構造体フィールド名をJSONのフィールド名へ
func jsonFieldName(field string) string {
	switch field {
	case "SupplierID":
		return "supplier_id"
	default:
		return strings.ToLower(field)
	}
}

func messageFor(field string, tag string) string {
	switch tag {
	case "required":
		return "The " + field + " field is required."
	case "gte", "gt":
		return "The " + field + " must be greater than or equal to 0."
	case "max":
		return "The " + field + " is too long."
	default:
		return "The " + field + " is invalid."
	}
}
