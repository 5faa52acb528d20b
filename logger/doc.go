// Package logger provides structured logging built on zerolog, with JSON
// and console output formats, leveled methods, and field helpers.
//
// # Basic Usage
//
//	log := logger.NewDefault("my-service")
//	log.Info("started", logger.Fields("port", 8080))
//
//	log = log.WithComponent("httpclient")
//	log.WithError(err).Error("dispatch failed")
package logger
