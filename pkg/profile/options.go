package profile

import (
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnfixture/pkg/config"
	"github.com/spf13/cast"
)

// Property keys that configure the database connection of a profile.
const (
	KeyDialect   = "database.dialect"
	KeyURL       = "database.connectionUrl"
	KeyHost      = "database.host"
	KeyPort      = "database.port"
	KeyUser      = "database.userName"
	KeyPassword  = "database.password"
	KeyDatabase  = "database.name"
	KeySSLMode   = "database.sslMode"
	KeySchema    = "database.defaultSchemaName"
	KeyBatchSize = "database.batchSize"
)

// ToOptions translates connection properties to config options. Keys that
// are absent or have empty values produce no option. Unknown keys are
// ignored.
func (p Properties) ToOptions() []config.Option {
	var res []config.Option

	str := map[string]func(string) config.Option{
		KeyDialect:  config.OptDatabaseDialect,
		KeyURL:      config.OptDatabaseURL,
		KeyHost:     config.OptDatabaseHost,
		KeyUser:     config.OptDatabaseUser,
		KeyPassword: config.OptDatabasePassword,
		KeyDatabase: config.OptDatabaseDatabase,
		KeySSLMode:  config.OptDatabaseSSLMode,
		KeySchema:   config.OptDatabaseSchema,
	}
	for _, k := range []string{
		KeyDialect, KeyURL, KeyHost, KeyUser,
		KeyPassword, KeyDatabase, KeySSLMode, KeySchema,
	} {
		if v := strings.TrimSpace(p[k]); v != "" {
			res = append(res, str[k](v))
		}
	}

	num := map[string]func(int) config.Option{
		KeyPort:      config.OptDatabasePort,
		KeyBatchSize: config.OptDatabaseBatchSize,
	}
	for _, k := range []string{KeyPort, KeyBatchSize} {
		v := strings.TrimSpace(p[k])
		if v == "" {
			continue
		}
		i, err := cast.ToIntE(v)
		if err != nil {
			gn.Warn("Property <em>%s</em> is not a number: '%s', ignoring", k, v)
			continue
		}
		res = append(res, num[k](i))
	}

	return res
}
