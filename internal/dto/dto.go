// Package dto contém a representação de transferência (JSON) de cada recurso
// e o mapeamento de/para as entidades de domínio.
//
// Os campos são ponteiros para que a ausência no payload seja observável pela
// validação. O mapeamento nunca falha: ToEntity só desreferencia valores já validados.
package dto

func ptr[T any](v T) *T { return &v }

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func mapAll[E any, D any](items []E, fn func(E) D) []D {
	out := make([]D, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
