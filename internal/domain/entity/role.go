package entity

// Role rol de un usuario del sistema. Tipo cerrado: toda decisión por rol debe
// hacer switch exhaustivo sobre estas seis constantes.
type Role string

const (
	RoleSuperAdmin Role = "super_admin" // visibilidad total, sin alcance
	RoleAdmin      Role = "admin"       // alcance: su empresa (todas sus tiendas)
	RoleManager    Role = "manager"     // alcance: su tienda
	RoleStoreman   Role = "storeman"    // alcance: su tienda (bodega/picking)
	RoleSalesman   Role = "salesman"    // alcance: su tienda (ventas)
	RoleRetailer   Role = "retailer"    // alcance: su propio registro de minorista
)

// Valid reporta si el rol es uno de los seis conocidos.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleManager, RoleStoreman, RoleSalesman, RoleRetailer:
		return true
	}
	return false
}

// Operational reporta si el rol es operativo (todo menos retailer).
// Los roles operativos pueden referenciar minoristas para flujos de pedidos.
func (r Role) Operational() bool {
	return r.Valid() && r != RoleRetailer
}

// Actor es el principal autenticado que invoca una operación. Se pasa SIEMPRE
// como parámetro explícito a AccessScope y al ciclo de vida de pedidos; nunca
// se lee de estado ambiente.
type Actor struct {
	UserID     string
	Role       Role
	CompanyID  string // presente para admin/manager/storeman/salesman
	StoreID    string // presente para manager/storeman/salesman
	RetailerID string // presente solo para retailer
}

// ValidScope verifica las invariantes de alcance por rol:
// retailer siempre con RetailerID y sin CompanyID/StoreID;
// super_admin sin ningún campo de alcance.
func (a Actor) ValidScope() bool {
	if !a.Role.Valid() {
		return false
	}
	switch a.Role {
	case RoleSuperAdmin:
		return a.CompanyID == "" && a.StoreID == "" && a.RetailerID == ""
	case RoleRetailer:
		return a.RetailerID != "" && a.CompanyID == "" && a.StoreID == ""
	case RoleAdmin:
		return a.CompanyID != "" && a.RetailerID == ""
	default: // manager, storeman, salesman
		return a.CompanyID != "" && a.StoreID != "" && a.RetailerID == ""
	}
}
