package utils

import (
	"strings"

	"vidtube.com/config"
)

// GetMysqlDsn assembles the DSN from the loaded config. TranslateError
// depends on parseTime being on, so it is always appended.
func GetMysqlDsn() string {
	dsn := strings.Join([]string{config.ConfigInfo.Mysql.Username, ":",
		config.ConfigInfo.Mysql.Password, "@tcp(", config.ConfigInfo.Mysql.Addr, ")/",
		config.ConfigInfo.Mysql.Database, "?charset=" + config.ConfigInfo.Mysql.Charset + "&parseTime=true"}, "")
	return dsn
}
