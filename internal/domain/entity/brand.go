package entity

// Brand representa una marca/unidad de negocio; particiona productos y pedidos.
type Brand string

// Marcas del grupo.
const (
	BrandFincaDonRafa Brand = "Finca Don Rafa"
	BrandYuteco       Brand = "Yuteco"
	BrandEcotact      Brand = "Ecotact"
)

// Brands lista cerrada de marcas válidas, en orden de presentación.
var Brands = []Brand{BrandFincaDonRafa, BrandYuteco, BrandEcotact}

// IsValid indica si la marca pertenece al conjunto enumerado.
func (b Brand) IsValid() bool {
	for _, v := range Brands {
		if v == b {
			return true
		}
	}
	return false
}
