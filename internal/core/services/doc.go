// Package services implements the driving ports.
//
// SplitService owns the split itself: it reads a source through a
// DocumentReader, partitions the lines and hands each part to a PartWriter.
// SettingsService and HistoryService sit on the ConfigStore and
// HistoryStore ports. Nothing here touches the filesystem directly.
package services
