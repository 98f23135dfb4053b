package seeder

import (
	"fmt"
	"math/rand"

	"app/internal/domain/model"

	"github.com/shopspring/decimal"
)

// Factory はシード用のそれっぽいダミーデータを作る。
// 乱数源は外から渡す（グローバル乱数は使わない）。
type Factory struct {
	r *rand.Rand
}

func NewFactory(r *rand.Rand) *Factory {
	return &Factory{r: r}
}

var supplierNames = []string{
	"Yamato", "Sakura", "Fuji", "Asahi", "Kita", "Minami", "Hikari", "Aoba", "Midori", "Shinsei",
}

var supplierSuffixes = []string{
	"Trading", "Industries", "Supply", "Logistics", "Wholesale",
}

var productAdjectives = []string{
	"Premium", "Classic", "Compact", "Eco", "Deluxe", "Smart", "Portable", "Heavy-Duty",
}

var productNouns = []string{
	"Kettle", "Lamp", "Chair", "Blender", "Speaker", "Backpack", "Notebook", "Monitor", "Grinder", "Fan",
}

func (f *Factory) NewSupplier() model.Supplier {
	name := supplierNames[f.r.Intn(len(supplierNames))]
	suffix := supplierSuffixes[f.r.Intn(len(supplierSuffixes))]
	n := f.r.Intn(900) + 100

	return model.Supplier{
		Name:    fmt.Sprintf("%s %s %d", name, suffix, n),
		Email:   fmt.Sprintf("contact%d@%s.example.com", n, toLowerASCII(name)),
		Phone:   fmt.Sprintf("0%d-%04d-%04d", f.r.Intn(9)+1, f.r.Intn(10000), f.r.Intn(10000)),
		Address: fmt.Sprintf("%d-%d Chuo, Osaka", f.r.Intn(20)+1, f.r.Intn(20)+1),
	}
}

func (f *Factory) NewProduct() model.Product {
	adj := productAdjectives[f.r.Intn(len(productAdjectives))]
	noun := productNouns[f.r.Intn(len(productNouns))]

	//1.00〜999.99の範囲
	cents := int64(f.r.Intn(99900) + 100)

	return model.Product{
		Name:        fmt.Sprintf("%s %s %d", adj, noun, f.r.Intn(9000)+1000),
		Description: fmt.Sprintf("A %s %s for everyday use.", toLowerASCII(adj), toLowerASCII(noun)),
		Price:       decimal.New(cents, -2),
	}
}

func toLowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
