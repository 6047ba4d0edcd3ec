package reporting

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/carpihogar-api/internal/domain/entity"
)

const (
	// ExpiringWindow plazo en el que una factura pendiente cuenta como "a vencer".
	ExpiringWindow = 7 * 24 * time.Hour
	// OverdueAlert atraso a partir del cual se marca al proveedor en rojo.
	OverdueAlert = 20 * 24 * time.Hour
)

// ProviderBalance fila del resumen de proveedores con su deuda.
type ProviderBalance struct {
	ID      string          `json:"id"`
	Codigo  string          `json:"codigo"`
	Nombre  string          `json:"nombre"`
	RIF     string          `json:"rif"`
	Debt    decimal.Decimal `json:"debt"`
	Overdue bool            `json:"overdue"`
}

// ProviderSummary totales de cuentas por pagar y una fila por proveedor.
type ProviderSummary struct {
	TotalProviders int               `json:"totalProviders"`
	TotalDebt      decimal.Decimal   `json:"totalDebt"`
	TopDebtor      string            `json:"topDebtor"`
	ExpiringSoon   int               `json:"expiringSoon"`
	Rows           []ProviderBalance `json:"rows"`
}

// ProviderBalances arma el resumen de deuda. Los totales cubren todos los proveedores;
// search (código, nombre o RIF, sin acentos ni mayúsculas) solo filtra las filas.
// Las facturas pagadas no cuentan como a vencer ni como atrasadas.
func ProviderBalances(providers []*entity.Provider, invoices []*entity.Invoice, now time.Time, search string, normalize func(string) string) ProviderSummary {
	debt := make(map[string]decimal.Decimal, len(providers))
	late := make(map[string]bool)
	sum := ProviderSummary{TotalProviders: len(providers), TotalDebt: decimal.Zero, Rows: []ProviderBalance{}}

	for _, inv := range invoices {
		bal := inv.Balance()
		if !bal.IsPositive() {
			continue
		}
		sum.TotalDebt = sum.TotalDebt.Add(bal)
		debt[inv.ProviderID] = debt[inv.ProviderID].Add(bal)
		if inv.DueDate.IsZero() {
			continue
		}
		if left := inv.DueDate.Sub(now); left >= 0 && left <= ExpiringWindow {
			sum.ExpiringSoon++
		}
		if now.Sub(inv.DueDate) > OverdueAlert {
			late[inv.ProviderID] = true
		}
	}

	top := decimal.Zero
	for _, p := range providers {
		if d := debt[p.ID]; d.GreaterThan(top) {
			top, sum.TopDebtor = d, p.Nombre
		}
	}

	term := normalize(strings.TrimSpace(search))
	for _, p := range providers {
		if term != "" &&
			!strings.Contains(normalize(p.Nombre), term) &&
			!strings.Contains(normalize(p.Codigo), term) &&
			!strings.Contains(normalize(p.RIF), term) {
			continue
		}
		sum.Rows = append(sum.Rows, ProviderBalance{
			ID:      p.ID,
			Codigo:  p.Codigo,
			Nombre:  p.Nombre,
			RIF:     p.RIF,
			Debt:    debt[p.ID],
			Overdue: late[p.ID],
		})
	}
	sort.SliceStable(sum.Rows, func(i, j int) bool { return sum.Rows[i].Nombre < sum.Rows[j].Nombre })
	return sum
}
