// Package ramendex turns scraped restaurant-chain pages into canonical,
// search-ready records: menu items, store locations, brand text and shop
// products. The cleaning engine that classifies, normalizes and deduplicates
// records lives in the clean package.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, meilisearch/).
package ramendex
