// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and the store
// (defined in internal/store) to fulfill application features.
//
// For tasks, the service owns the lifecycle policy that the store cannot
// express on its own: how logical identifiers are minted, and how the
// store's update/delete change counts are interpreted as "not found".
package service
