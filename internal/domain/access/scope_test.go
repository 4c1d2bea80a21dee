package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/repuestos-api/internal/domain/access"
	"github.com/jhoicas/repuestos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Actores de prueba
// ──────────────────────────────────────────────────────────────────────────────

var (
	superAdmin = entity.Actor{UserID: "u-sa", Role: entity.RoleSuperAdmin}
	adminACME  = entity.Actor{UserID: "u-ad", Role: entity.RoleAdmin, CompanyID: "acme"}
	managerNYC = entity.Actor{UserID: "u-mg", Role: entity.RoleManager, CompanyID: "acme", StoreID: "NYC001"}
	storemanLA = entity.Actor{UserID: "u-st", Role: entity.RoleStoreman, CompanyID: "acme", StoreID: "LAX001"}
	salesman   = entity.Actor{UserID: "u-sl", Role: entity.RoleSalesman, CompanyID: "acme", StoreID: "NYC001"}
	retailer7  = entity.Actor{UserID: "u-rt", Role: entity.RoleRetailer, RetailerID: "ret-7"}
)

// ──────────────────────────────────────────────────────────────────────────────
// CanAccessCompany
// ──────────────────────────────────────────────────────────────────────────────

func TestCanAccessCompany_PorRol(t *testing.T) {
	casos := []struct {
		nombre    string
		actor     entity.Actor
		companyID string
		esperado  bool
	}{
		{"super_admin accede a cualquier empresa", superAdmin, "otra", true},
		{"admin accede a su empresa", adminACME, "acme", true},
		{"admin no accede a otra empresa", adminACME, "otra", false},
		{"manager accede a su empresa", managerNYC, "acme", true},
		{"manager no accede a otra empresa", managerNYC, "otra", false},
		{"salesman accede a su empresa", salesman, "acme", true},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			assert.Equal(t, tc.esperado, access.CanAccessCompany(tc.actor, tc.companyID))
		})
	}
}

// retailer nunca tiene visibilidad a nivel empresa, ni siquiera a la de su tienda.
func TestCanAccessCompany_RetailerSiempreFalse(t *testing.T) {
	for _, cid := range []string{"acme", "otra", "ret-7", ""} {
		assert.False(t, access.CanAccessCompany(retailer7, cid),
			"retailer no debe acceder a empresa %q", cid)
	}
}

func TestCanAccessCompany_EntradaInvalida(t *testing.T) {
	assert.False(t, access.CanAccessCompany(adminACME, ""), "companyID vacío")
	assert.False(t, access.CanAccessCompany(entity.Actor{Role: "gerente"}, "acme"), "rol desconocido")
}

// ──────────────────────────────────────────────────────────────────────────────
// CanAccessStore
// ──────────────────────────────────────────────────────────────────────────────

func TestCanAccessStore_PorRol(t *testing.T) {
	casos := []struct {
		nombre   string
		actor    entity.Actor
		storeID  string
		esperado bool
	}{
		{"super_admin accede a cualquier tienda", superAdmin, "NYC001", true},
		{"admin accede a tiendas (valida persistencia)", adminACME, "NYC001", true},
		{"manager accede a su tienda", managerNYC, "NYC001", true},
		{"manager no accede a otra tienda", managerNYC, "LAX001", false},
		{"storeman accede a su tienda", storemanLA, "LAX001", true},
		{"salesman no accede a otra tienda", salesman, "LAX001", false},
		{"retailer nunca accede a tiendas", retailer7, "NYC001", false},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			assert.Equal(t, tc.esperado, access.CanAccessStore(tc.actor, tc.storeID))
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CanAccessRetailer
// ──────────────────────────────────────────────────────────────────────────────

// Escenario: retailer con retailer_id ret-7 accede a ret-7 y a nada más,
// incluido el ID vacío.
func TestCanAccessRetailer_RetailerSoloASiMismo(t *testing.T) {
	assert.True(t, access.CanAccessRetailer(retailer7, "ret-7"))
	assert.False(t, access.CanAccessRetailer(retailer7, "ret-8"))
	assert.False(t, access.CanAccessRetailer(retailer7, ""), "ID vacío nunca pasa")
}

// Los roles operativos siempre pueden referenciar minoristas (flujos de pedidos).
func TestCanAccessRetailer_RolesOperativosSiemprePueden(t *testing.T) {
	for _, actor := range []entity.Actor{superAdmin, adminACME, managerNYC, storemanLA, salesman} {
		assert.True(t, access.CanAccessRetailer(actor, "ret-7"), "rol %s", actor.Role)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Universos accesibles
// ──────────────────────────────────────────────────────────────────────────────

var (
	todasLasEmpresas = []entity.Company{
		{ID: "acme"}, {ID: "globex"},
	}
	todasLasTiendas = []entity.Store{
		{ID: "NYC001", CompanyID: "acme"},
		{ID: "LAX001", CompanyID: "acme"},
		{ID: "GLB001", CompanyID: "globex"},
	}
	todosLosMinoristas = []entity.Retailer{
		{ID: "ret-7", StoreID: "NYC001", CompanyID: "acme"},
		{ID: "ret-8", StoreID: "LAX001", CompanyID: "acme"},
		{ID: "ret-9", StoreID: "GLB001", CompanyID: "globex"},
	}
)

func TestAccessibleCompanies(t *testing.T) {
	assert.ElementsMatch(t, []string{"acme", "globex"}, access.AccessibleCompanies(superAdmin, todasLasEmpresas))
	assert.ElementsMatch(t, []string{"acme"}, access.AccessibleCompanies(adminACME, todasLasEmpresas))
	assert.ElementsMatch(t, []string{"acme"}, access.AccessibleCompanies(managerNYC, todasLasEmpresas))
	assert.Empty(t, access.AccessibleCompanies(retailer7, todasLasEmpresas))
}

func TestAccessibleStores(t *testing.T) {
	assert.ElementsMatch(t, []string{"NYC001", "LAX001", "GLB001"}, access.AccessibleStores(superAdmin, todasLasTiendas))
	assert.ElementsMatch(t, []string{"NYC001", "LAX001"}, access.AccessibleStores(adminACME, todasLasTiendas),
		"admin resuelve a todas las tiendas de su empresa")
	assert.ElementsMatch(t, []string{"NYC001"}, access.AccessibleStores(managerNYC, todasLasTiendas))
	assert.Empty(t, access.AccessibleStores(retailer7, todasLasTiendas))

	sinTienda := entity.Actor{Role: entity.RoleManager, CompanyID: "acme"}
	assert.Empty(t, access.AccessibleStores(sinTienda, todasLasTiendas),
		"manager sin tienda asignada no ve ninguna")
}

func TestAccessibleRetailers(t *testing.T) {
	assert.ElementsMatch(t, []string{"ret-7", "ret-8", "ret-9"}, access.AccessibleRetailers(superAdmin, todosLosMinoristas))
	assert.ElementsMatch(t, []string{"ret-7", "ret-8"}, access.AccessibleRetailers(adminACME, todosLosMinoristas))
	assert.ElementsMatch(t, []string{"ret-7"}, access.AccessibleRetailers(managerNYC, todosLosMinoristas))
	assert.ElementsMatch(t, []string{"ret-7"}, access.AccessibleRetailers(retailer7, todosLosMinoristas))

	sinID := entity.Actor{Role: entity.RoleRetailer}
	assert.Empty(t, access.AccessibleRetailers(sinID, todosLosMinoristas))
}

// ──────────────────────────────────────────────────────────────────────────────
// ScopeLabel
// ──────────────────────────────────────────────────────────────────────────────

func TestScopeLabel(t *testing.T) {
	assert.Equal(t, "todas las empresas", access.ScopeLabel(superAdmin))
	assert.Equal(t, "empresa acme", access.ScopeLabel(adminACME))
	assert.Equal(t, "tienda NYC001", access.ScopeLabel(managerNYC))
	assert.Equal(t, "minorista ret-7", access.ScopeLabel(retailer7))
	assert.Equal(t, "sin alcance", access.ScopeLabel(entity.Actor{Role: "gerente"}))
}
