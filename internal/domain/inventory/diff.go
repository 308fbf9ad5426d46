package inventory

import "sort"

// LineChange describe el cambio de una línea sobre un disco.
// Para líneas agregadas OldQuantity es 0; para líneas removidas NewQuantity es 0.
type LineChange struct {
	RecordID    string
	OldQuantity int
	NewQuantity int
}

// LineDiff particiona la edición de un agregado en altas, bajas y cambios de cantidad.
// Rejected lista los discos de la selección nueva cuya cantidad solicitada no es
// positiva: se reportan en lugar de omitirse en silencio, y el caller decide si
// abortar todo (ventas) o continuar sin ellos (ingresos).
type LineDiff struct {
	Added    []LineChange
	Removed  []LineChange
	Changed  []LineChange
	Rejected []string
}

// Empty indica que la edición no produce ningún delta ni mutación de líneas.
func (d LineDiff) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// DiffLineItems computa el diff entre las líneas persistidas de un agregado
// (mapa disco → cantidad; vacío en un alta) y la selección nueva con sus
// cantidades solicitadas. Reglas:
//
//   - removido = clave vieja fuera de la selección → reversa completa y borrado.
//   - agregado = clave nueva fuera del mapa viejo → exige cantidad > 0; si falta
//     o es <= 0 la línea se reporta en Rejected.
//   - común = clave en ambos → si la cantidad nueva está presente, es > 0 y
//     difiere de la vieja, cambio de cantidad; si falta o es <= 0 la línea queda
//     intacta (0 no significa remover: remover es excluir el disco de la selección).
//
// Las particiones se devuelven ordenadas por disco para que los bloqueos de fila
// se adquieran siempre en el mismo orden.
func DiffLineItems(old map[string]int, selection []string, quantities map[string]int) LineDiff {
	var d LineDiff

	selected := make(map[string]bool, len(selection))
	for _, id := range selection {
		if selected[id] {
			continue // ids repetidos en la selección cuentan una sola vez
		}
		selected[id] = true

		oldQty, exists := old[id]
		newQty, hasQty := quantities[id]
		if !exists {
			if !hasQty || newQty <= 0 {
				d.Rejected = append(d.Rejected, id)
				continue
			}
			d.Added = append(d.Added, LineChange{RecordID: id, NewQuantity: newQty})
			continue
		}
		if !hasQty || newQty <= 0 || newQty == oldQty {
			continue
		}
		d.Changed = append(d.Changed, LineChange{RecordID: id, OldQuantity: oldQty, NewQuantity: newQty})
	}

	for id, oldQty := range old {
		if !selected[id] {
			d.Removed = append(d.Removed, LineChange{RecordID: id, OldQuantity: oldQty})
		}
	}

	sortChanges(d.Added)
	sortChanges(d.Removed)
	sortChanges(d.Changed)
	sort.Strings(d.Rejected)
	return d
}

func sortChanges(cs []LineChange) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].RecordID < cs[j].RecordID })
}
