package params

import (
	"github.com/spf13/viper"
)

// FileVersion is the value expected for `configVersion` in a params
// file; any other value marks the file as written for some other
// version of this tool and it is rejected outright.
const FileVersion = "setup/v1"

// File is an optional source of parameter values, read once at
// startup. Top-level keys are parameter names; values are taken as
// strings and go through the same type coercion as environment values.
type File struct {
	path string
	v    *viper.Viper
}

// LoadFile reads a params file and checks its version marker.
func LoadFile(path string) (*File, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, BadParamsFileError(path, err)
	}
	if got := v.GetString("configVersion"); got != FileVersion {
		return nil, WrongFileVersionError(path, got)
	}
	return &File{path: path, v: v}, nil
}

// Path returns the location the file was read from.
func (f *File) Path() string {
	return f.path
}

func (f *File) lookup(name string) (string, bool) {
	if f == nil || !f.v.IsSet(name) {
		return "", false
	}
	return f.v.GetString(name), true
}
