package repository

import (
	"app/internal/domain/model"
	"context"
)

// 仕入先の永続化。APIからは参照のみ、作成はシーダーが行う。
type SupplierRepository interface {
	Create(ctx context.Context, s model.Supplier) (model.Supplier, error)
	//supplier_idの存在チェック
	Exists(ctx context.Context, id int64) (bool, error)
}
