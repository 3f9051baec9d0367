package ecs

import "github.com/milk9111/brawler/ecs/component"

// ForEach visits every entity holding kind a, in insertion order.
func ForEach[A any](w *World, a component.ComponentKind[A], fn func(Entity, *A)) {
	sa := storeFor(w, a, false)
	if sa == nil {
		return
	}
	for _, id := range sa.ids() {
		va, ok := sa.get(id)
		if !ok {
			continue
		}
		fn(w.entities.handle(id), va)
	}
}

// ForEach2 visits entities holding both kinds, ordered by the first store.
func ForEach2[A, B any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa, sb := storeFor(w, a, false), storeFor(w, b, false)
	if sa == nil || sb == nil {
		return
	}
	for _, id := range sa.ids() {
		va, ok := sa.get(id)
		if !ok {
			continue
		}
		vb, ok := sb.get(id)
		if !ok {
			continue
		}
		fn(w.entities.handle(id), va, vb)
	}
}

func ForEach3[A, B, C any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], c component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sc := storeFor(w, c, false)
	if sc == nil {
		return
	}
	ForEach2(w, a, b, func(e Entity, va *A, vb *B) {
		if vc, ok := sc.get(e.id()); ok {
			fn(e, va, vb, vc)
		}
	})
}

func ForEach4[A, B, C, D any](w *World, a component.ComponentKind[A], b component.ComponentKind[B], c component.ComponentKind[C], d component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	sd := storeFor(w, d, false)
	if sd == nil {
		return
	}
	ForEach3(w, a, b, c, func(e Entity, va *A, vb *B, vc *C) {
		if vd, ok := sd.get(e.id()); ok {
			fn(e, va, vb, vc, vd)
		}
	})
}
