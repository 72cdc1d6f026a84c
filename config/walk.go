package config

import (
	"reflect"
)

// visitor is called on every value reached while walking a struct, with the
// path of exported field names leading to it.
type visitor func(val reflect.Value, typ reflect.Type, path []string)

func allVisitors(visitors ...visitor) visitor {
	return func(val reflect.Value, typ reflect.Type, path []string) {
		for _, visit := range visitors {
			visit(val, typ, path)
		}
	}
}

func walkStruct(element any, visit visitor) {
	walkStructInternal(reflect.ValueOf(element), []string{}, visit)
}

func walkStructInternal(val reflect.Value, path []string, visit visitor) {
	visit(val, val.Type(), path)

	val = deref(val)
	if !val.IsValid() || val.Kind() != reflect.Struct {
		return
	}

	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		structField := typ.Field(i)
		if !structField.IsExported() {
			continue
		}
		walkStructInternal(val.Field(i), append(path[:len(path):len(path)], structField.Name), visit)
	}
}

func deref(value reflect.Value) reflect.Value {
	if value.Kind() == reflect.Pointer || value.Kind() == reflect.Interface {
		return deref(value.Elem())
	}
	return value
}

func createNilStructs(val reflect.Value, typ reflect.Type, _ []string) {
	if typ.Kind() == reflect.Pointer &&
		val.IsNil() &&
		typ.Elem().Kind() == reflect.Struct &&
		val.CanSet() {

		val.Set(reflect.New(typ.Elem()))
	}
}
