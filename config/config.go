package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/a-peyrard/appboot/option"
	"github.com/spf13/viper"
)

type (
	// Options drives how environment variables are bound to a config struct.
	Options struct {
		prefix   string
		defaults map[string]any
	}

	// WithDefault is implemented by config structs (or nested structs) filling
	// their own zero fields once the environment has been read.
	WithDefault interface {
		ApplyDefault()
	}

	// WithValidation is implemented by config structs checking their own
	// content. It is called after every default has been applied.
	WithValidation interface {
		Validate() error
	}
)

// WithEnvPrefix prepends prefix (and an underscore) to every bound variable.
func WithEnvPrefix(prefix string) option.Option[Options] {
	return func(opts *Options) {
		opts.prefix = prefix
	}
}

// WithDefaultValue registers a default for the given key (dotted path of
// mapstructure names), used when the matching variable is absent.
func WithDefaultValue(key string, value any) option.Option[Options] {
	return func(opts *Options) {
		if opts.defaults == nil {
			opts.defaults = make(map[string]any)
		}
		opts.defaults[key] = value
	}
}

// Load builds a T from the environment.
//
// Every exported leaf field is bound to an environment variable named after
// its path, e.g. field Cache.URL with prefix APP reads APP_CACHE_URL.
func Load[T any](opts ...option.Option[Options]) (*T, error) {
	options := option.Build(&Options{}, opts...)

	v := viper.New()
	v.SetEnvPrefix(options.prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, value := range options.defaults {
		v.SetDefault(key, value)
	}

	var vT T
	bindEnvs(v, options.prefix, reflect.New(reflect.TypeOf(vT)).Elem().Interface())

	if err := v.Unmarshal(&vT); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}

	walkStruct(&vT, allVisitors(createNilStructs, applyDefault))

	var validationErr error
	walkStruct(&vT, func(val reflect.Value, typ reflect.Type, path []string) {
		if validationErr == nil {
			validationErr = validate(val, typ, path)
		}
	})
	if validationErr != nil {
		return nil, validationErr
	}

	return &vT, nil
}

func bindEnvs(viperI *viper.Viper, envPrefix string, myStruct any, parts ...string) {
	ifv := reflect.ValueOf(myStruct)
	ift := reflect.TypeOf(myStruct)
	for i := 0; i < ift.NumField(); i++ {
		v := ifv.Field(i)
		t := ift.Field(i)
		if !t.IsExported() {
			continue
		}
		tv, ok := t.Tag.Lookup("mapstructure")
		if !ok {
			tv = t.Name
		}
		switch v.Kind() {
		case reflect.Struct:
			bindEnvs(viperI, envPrefix, v.Interface(), append(parts, tv)...)
		case reflect.Pointer:
			if t.Type.Elem().Kind() == reflect.Struct {
				bindEnvs(viperI, envPrefix, reflect.Zero(t.Type.Elem()).Interface(), append(parts, tv)...)
			}
		default:
			key := strings.Join(append(parts, tv), ".")
			envParts := make([]string, 0, len(parts)+1)
			for _, part := range append(parts, tv) {
				envParts = append(envParts, toScreamingSnakeCase(part))
			}
			_ = viperI.BindEnv(key, mergeWithEnvPrefix(envPrefix, strings.Join(envParts, "_")))
		}
	}
}

func mergeWithEnvPrefix(envPrefix string, in string) string {
	if envPrefix != "" {
		return strings.ToUpper(envPrefix + "_" + in)
	}

	return strings.ToUpper(in)
}

func applyDefault(val reflect.Value, typ reflect.Type, _ []string) {
	if withDefault, ok := implementation[WithDefault](val, typ); ok {
		withDefault.ApplyDefault()
	}
}

func validate(val reflect.Value, typ reflect.Type, path []string) error {
	withValidation, ok := implementation[WithValidation](val, typ)
	if !ok {
		return nil
	}
	if err := withValidation.Validate(); err != nil {
		if len(path) == 0 {
			return err
		}
		return fmt.Errorf("invalid %s: %w", strings.Join(path, "."), err)
	}
	return nil
}

// implementation returns val as an I, also trying its address so that
// non-pointer nested structs with pointer receivers are reached.
func implementation[I any](val reflect.Value, typ reflect.Type) (i I, ok bool) {
	if !val.IsValid() {
		return i, false
	}
	if kind := val.Kind(); (kind == reflect.Pointer || kind == reflect.Interface) && val.IsNil() {
		return i, false
	}
	iface := reflect.TypeFor[I]()
	switch {
	case typ.Implements(iface):
		return val.Interface().(I), true
	case typ.Kind() != reflect.Pointer && val.CanAddr() && reflect.PointerTo(typ).Implements(iface):
		return val.Addr().Interface().(I), true
	}
	return i, false
}
