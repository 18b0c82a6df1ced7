package inventory

// DerivedStock calcula o estoque inteiro derivado de um produto fracionado:
// floor(VolumeTotal / VolumeUnitario). Invariante mantida após toda mutação.
func DerivedStock(volumeTotal, volumeUnitario int64) int64 {
	if volumeUnitario <= 0 || volumeTotal <= 0 {
		return 0
	}
	return volumeTotal / volumeUnitario
}
