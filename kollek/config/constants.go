package config

import "time"

// UI and display constants
const (
	// Pagination
	CardsPerPage = 10

	// Colors
	ErrorColor   = 0xFF0000
	SuccessColor = 0x00FF00
	InfoColor    = 0x0099FF
	WarningColor = 0xFFAA00

	// Rarity colors
	RarityCommonColor    = 0xCCCCCC
	RarityRareColor      = 0x3498DB
	RarityEpicColor      = 0x9B59B6
	RarityLegendaryColor = 0xF1C40F
)

// Timeouts
const (
	CommandExecutionTimeout = 10 * time.Second
	DefaultQueryTimeout     = 30 * time.Second
	ShutdownTimeout         = 10 * time.Second
)
