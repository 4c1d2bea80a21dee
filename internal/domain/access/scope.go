// Package access resuelve la visibilidad por rol: qué empresas, tiendas y
// minoristas puede ver o tocar un Actor. Todas las funciones son totales y
// puras; los universos ("todas las tiendas", etc.) los aporta el llamador.
package access

import (
	"github.com/jhoicas/repuestos-api/internal/domain/entity"
)

// CanAccessCompany reporta si el actor puede acceder a la empresa indicada.
// retailer nunca tiene visibilidad a nivel empresa.
func CanAccessCompany(a entity.Actor, companyID string) bool {
	if companyID == "" || !a.Role.Valid() {
		return false
	}
	switch a.Role {
	case entity.RoleSuperAdmin:
		return true
	case entity.RoleRetailer:
		return false
	default: // admin, manager, storeman, salesman
		return a.CompanyID == companyID
	}
}

// CanAccessStore reporta si el actor puede acceder a la tienda indicada.
// admin pasa para cualquier tienda: la relación tienda↔empresa la valida
// autoritativamente la capa de persistencia, no este predicado.
func CanAccessStore(a entity.Actor, storeID string) bool {
	if storeID == "" || !a.Role.Valid() {
		return false
	}
	switch a.Role {
	case entity.RoleSuperAdmin, entity.RoleAdmin:
		return true
	case entity.RoleRetailer:
		return false
	default: // manager, storeman, salesman
		return a.StoreID == storeID
	}
}

// CanAccessRetailer reporta si el actor puede referenciar al minorista indicado.
// Los roles operativos siempre pueden (flujos de pedidos); retailer solo a sí mismo.
func CanAccessRetailer(a entity.Actor, retailerID string) bool {
	if retailerID == "" || !a.Role.Valid() {
		return false
	}
	if a.Role.Operational() {
		return true
	}
	return a.RetailerID == retailerID
}

// AccessibleCompanies IDs de empresas visibles para el actor dado el universo completo.
func AccessibleCompanies(a entity.Actor, all []entity.Company) []string {
	switch {
	case a.Role == entity.RoleSuperAdmin:
		ids := make([]string, 0, len(all))
		for _, c := range all {
			ids = append(ids, c.ID)
		}
		return ids
	case a.Role.Operational() && a.CompanyID != "":
		return []string{a.CompanyID}
	default:
		return nil
	}
}

// AccessibleStores IDs de tiendas visibles para el actor dado el universo completo.
// admin resuelve a todas las tiendas de su empresa vía el mapeo tienda→empresa.
func AccessibleStores(a entity.Actor, all []entity.Store) []string {
	switch a.Role {
	case entity.RoleSuperAdmin:
		ids := make([]string, 0, len(all))
		for _, s := range all {
			ids = append(ids, s.ID)
		}
		return ids
	case entity.RoleAdmin:
		var ids []string
		for _, s := range all {
			if s.CompanyID == a.CompanyID {
				ids = append(ids, s.ID)
			}
		}
		return ids
	case entity.RoleManager, entity.RoleStoreman, entity.RoleSalesman:
		if a.StoreID == "" {
			return nil
		}
		return []string{a.StoreID}
	default:
		return nil
	}
}

// AccessibleRetailers IDs de minoristas visibles para el actor dado el universo
// completo: transitivos por empresa/tienda para roles operativos, singleton para retailer.
func AccessibleRetailers(a entity.Actor, all []entity.Retailer) []string {
	switch a.Role {
	case entity.RoleSuperAdmin:
		ids := make([]string, 0, len(all))
		for _, r := range all {
			ids = append(ids, r.ID)
		}
		return ids
	case entity.RoleAdmin:
		var ids []string
		for _, r := range all {
			if r.CompanyID == a.CompanyID {
				ids = append(ids, r.ID)
			}
		}
		return ids
	case entity.RoleManager, entity.RoleStoreman, entity.RoleSalesman:
		var ids []string
		for _, r := range all {
			if r.StoreID == a.StoreID && a.StoreID != "" {
				ids = append(ids, r.ID)
			}
		}
		return ids
	case entity.RoleRetailer:
		if a.RetailerID == "" {
			return nil
		}
		return []string{a.RetailerID}
	default:
		return nil
	}
}

// ScopeLabel descripción legible del alcance del actor. Solo para UI,
// no es frontera de seguridad.
func ScopeLabel(a entity.Actor) string {
	switch a.Role {
	case entity.RoleSuperAdmin:
		return "todas las empresas"
	case entity.RoleAdmin:
		return "empresa " + a.CompanyID
	case entity.RoleManager, entity.RoleStoreman, entity.RoleSalesman:
		return "tienda " + a.StoreID
	case entity.RoleRetailer:
		return "minorista " + a.RetailerID
	default:
		return "sin alcance"
	}
}
