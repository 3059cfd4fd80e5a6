// Package repository_mocks contains generated mocks for repository interfaces
package repository_mocks

//go:generate mockgen -source=../interfaces.go -destination=repository_mocks.go -package=repository_mocks
