// Package logger provides structured logging built on zerolog.
//
// It supports JSON and console output, level configuration, component
// scoped loggers and a small startup registry that summarizes which
// components and routes a process brought up.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//	  output: "stderr"
//
// # Usage
//
//	log := logger.Get("status")
//	log.Error("errored status code constructed from a success value",
//		logger.Fields(logger.FieldDomain, "generic domain"))
package logger
