package seeder

import (
	"context"
	"fmt"
	"math/rand"

	repo "app/internal/repository"
)

const (
	SupplierCount = 10
	ProductCount  = 100
)

// PickSupplierID はidsから一様ランダムに1件選ぶ（重複あり）。
func PickSupplierID(ids []int64, r *rand.Rand) int64 {
	return ids[r.Intn(len(ids))]
}

// Seeder は空のDBに仕入先10件と商品100件を投入する。
// 1トランザクションで行い、途中で失敗したら何も残さない。
type Seeder struct {
	txManager repo.TransactionManager
	factory   *Factory
	r         *rand.Rand
}

// DI
func New(txManager repo.TransactionManager, r *rand.Rand) *Seeder {
	return &Seeder{
		txManager: txManager,
		factory:   NewFactory(r),
		r:         r,
	}
}

func (s *Seeder) Run(ctx context.Context) error {
	return s.txManager.WithinTx(ctx, func(tx repo.TxRepos) error {
		//仕入先を先に作ってIDを集める
		supplierIDs := make([]int64, 0, SupplierCount)
		for i := 0; i < SupplierCount; i++ {
			created, err := tx.Suppliers().Create(ctx, s.factory.NewSupplier())
			if err != nil {
				return fmt.Errorf("seed supplier: %w", err)
			}
			supplierIDs = append(supplierIDs, created.ID)
		}

		//各商品に既存の仕入先IDをランダムに割り当てる
		for i := 0; i < ProductCount; i++ {
			p := s.factory.NewProduct()
			p.SupplierID = PickSupplierID(supplierIDs, s.r)

			if _, err := tx.Products().Create(ctx, p); err != nil {
				return fmt.Errorf("seed product: %w", err)
			}
		}

		return nil
	})
}
