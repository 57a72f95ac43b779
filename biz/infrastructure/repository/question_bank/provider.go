package question_bank

import (
	"class-hive/biz/infrastructure/config"
	"class-hive/biz/infrastructure/util/log"
)

// NewMySQLMapperFromConfig creates the question bank mapper.
func NewMySQLMapperFromConfig(config *config.Config) (*MySQLMapper, error) {
	log.Info("Creating MySQL mapper for question bank")
	return NewMySQLMapper(config.MySQL.DSN)
}
