// Package catalog holds the metadata catalog consulted when an operator picks
// an object category. A category name maps to a Descriptor listing the
// concrete types of that category and their attributes. Catalogs are loaded
// once and then read synchronously; lookups are exact and case-sensitive.
package catalog
