package common

import "os"

func IsProduction() bool {
	return os.Getenv(EnvKeyGoEnv) == "production"
}

func Mapper[T any, R any](items []T, mapFn func(T) R) []R {
	mapped := make([]R, len(items))
	for i := range len(items) {
		mapped[i] = mapFn(items[i])
	}
	return mapped
}

func Reducer[T any, R any](items []T, reduceFn func(R, T) R, initAcc R) R {
	finalAcc := initAcc
	for i := range len(items) {
		finalAcc = reduceFn(finalAcc, items[i])
	}
	return finalAcc
}

// KeyBy indexes items by the key returned from keyFn. Later items win on
// duplicate keys.
func KeyBy[T any, K comparable](items []T, keyFn func(T) K) map[K]T {
	return Reducer(items, func(m map[K]T, item T) map[K]T {
		m[keyFn(item)] = item
		return m
	}, make(map[K]T, len(items)))
}
