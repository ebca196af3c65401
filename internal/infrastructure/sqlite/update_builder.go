package sqlite

import "strings"

// setClause par (columna, valor) de un UPDATE parcial.
type setClause struct {
	column string
	value  any
}

// setIf agrega el par solo si el puntero viene presente. Para punteros a
// tipos no escalares, el llamador convierte el valor antes (ej. decimal a
// texto).
func setIf[T any](sets []setClause, column string, v *T) []setClause {
	if v == nil {
		return sets
	}
	return append(sets, setClause{column: column, value: *v})
}

// buildUpdate arma "UPDATE <tabla> SET c1 = ?, c2 = ? WHERE id = ?" con los
// args en orden. Devuelve ("", nil) si no hay columnas: el llamador trata el
// patch vacío como no-op exitoso.
func buildUpdate(table string, sets []setClause, id int64) (string, []any) {
	if len(sets) == 0 {
		return "", nil
	}
	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(table)
	b.WriteString(" SET ")
	args := make([]any, 0, len(sets)+1)
	for i, s := range sets {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(s.column)
		b.WriteString(" = ?")
		args = append(args, s.value)
	}
	b.WriteString(" WHERE id = ?")
	args = append(args, id)
	return b.String(), args
}
