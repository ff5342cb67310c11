// Package ibl provides template-based structured data extraction from HTML.
//
// Users annotate example pages ("templates") to mark which elements hold
// which attributes. The extract package learns an extraction tree from each
// template and applies it to new, structurally similar pages by aligning
// their tag sequences.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, html/).
package ibl
