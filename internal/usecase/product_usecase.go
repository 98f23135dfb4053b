package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	appvalidator "app/internal/validator"

	"github.com/shopspring/decimal"
)

// 商品が見つかりませんを統一
var ErrProductNotFound = errors.New("product not found")

// バリデーション失敗。field→メッセージを持ち回る。
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation error"
}

func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// usecaseがValidatorに依存する約束
type ProductValidator interface {
	Validate(ctx context.Context, in appvalidator.ProductInput) (map[string]string, error)
}

type ProductUsecase struct {
	productRepo repo.ProductRepository
	auditRepo   repo.AuditLogRepository
	validator   ProductValidator
}

// DI
func NewProductUsecase(
	productRepo repo.ProductRepository,
	auditRepo repo.AuditLogRepository,
	validator ProductValidator,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		auditRepo:   auditRepo,
		validator:   validator,
	}
}

// POST/PUT /productsの入力DTO
type ProductFieldsInput struct {
	Name        string
	Description string
	Price       float64
	SupplierID  int64
}

func (in ProductFieldsInput) toValidatorInput() appvalidator.ProductInput {
	return appvalidator.ProductInput{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		SupplierID:  in.SupplierID,
	}
}

// 全商品を返す
func (u *ProductUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := u.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	// 0件時にdataがnullにならないよう空スライスへ寄せる
	if products == nil {
		products = []model.Product{}
	}
	return products, nil
}

// IDで1件返す
func (u *ProductUsecase) GetProduct(ctx context.Context, productID int64) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, ErrProductNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 商品を作成。バリデーションに通らなければ何も書かない。
func (u *ProductUsecase) CreateProduct(ctx context.Context, actorUserID int64, in ProductFieldsInput) (model.Product, error) {
	fieldErrors, err := u.validator.Validate(ctx, in.toValidatorInput())
	if err != nil {
		return model.Product{}, err
	}
	if len(fieldErrors) > 0 {
		return model.Product{}, &ValidationError{Fields: fieldErrors}
	}

	now := time.Now()
	created, err := u.productRepo.Create(ctx, model.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       decimal.NewFromFloat(in.Price).Round(2),
		SupplierID:  in.SupplierID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return model.Product{}, err
	}

	u.writeAudit(ctx, actorUserID, model.AuditActionCreateProduct, created.ID, model.Product{}, created)

	return created, nil
}

// 商品を更新（全置き換え）。存在チェック→バリデーション→更新の順。
func (u *ProductUsecase) UpdateProduct(ctx context.Context, actorUserID int64, productID int64, in ProductFieldsInput) (model.Product, error) {
	before, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, ErrProductNotFound
	}
	if err != nil {
		return model.Product{}, err
	}

	fieldErrors, err := u.validator.Validate(ctx, in.toValidatorInput())
	if err != nil {
		return model.Product{}, err
	}
	if len(fieldErrors) > 0 {
		return model.Product{}, &ValidationError{Fields: fieldErrors}
	}

	err = u.productRepo.Update(ctx, model.Product{
		ID:          productID,
		Name:        in.Name,
		Description: in.Description,
		Price:       decimal.NewFromFloat(in.Price).Round(2),
		SupplierID:  in.SupplierID,
		UpdatedAt:   time.Now(),
	})
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, ErrProductNotFound
	}
	if err != nil {
		return model.Product{}, err
	}

	after, err := u.productRepo.FindByID(ctx, productID)
	if err != nil {
		return model.Product{}, err
	}

	u.writeAudit(ctx, actorUserID, model.AuditActionUpdateProduct, productID, before, after)

	return after, nil
}

// 商品を削除。2回目はErrProductNotFoundになるだけ。
func (u *ProductUsecase) DeleteProduct(ctx context.Context, actorUserID int64, productID int64) error {
	before, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrProductNotFound
	}
	if err != nil {
		return err
	}

	err = u.productRepo.Delete(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrProductNotFound
	}
	if err != nil {
		return err
	}

	u.writeAudit(ctx, actorUserID, model.AuditActionDeleteProduct, productID, before, model.Product{})

	return nil
}

// 監査ログを作成。
// 「誰が」「何を」「どの対象に」「どう変えたか」を残す。失敗しても本処理は成立させる。
func (u *ProductUsecase) writeAudit(ctx context.Context, actorUserID int64, action model.AuditAction, productID int64, before model.Product, after model.Product) {
	beforeJSON, _ := json.Marshal(before)
	afterJSON, _ := json.Marshal(after)

	err := u.auditRepo.Create(ctx, model.AuditLog{
		ActorUserID:  actorUserID,
		Action:       action,
		ResourceType: model.AuditResourceProduct,
		ResourceID:   productID,
		BeforeJSON:   string(beforeJSON),
		AfterJSON:    string(afterJSON),
		CreatedAt:    time.Now(),
	})
	if err != nil {
		slog.Warn("audit log write failed", slog.Any("error", err))
	}
}
