// Package domain contains the core business entities and value objects of
// the application, independent of any specific infrastructure or delivery
// mechanism.
package domain
