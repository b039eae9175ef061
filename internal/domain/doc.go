// Package domain contains the core entities and value objects for coordmod.
//
// This package represents the innermost layer of the Clean Architecture. It has
// no dependencies on infrastructure concerns (controller connection, file
// system, logging) and contains only the business rules of the frame commands.
//
// # Entities
//
//   - [Frame]: A tool (TF) or user (UF) coordinate frame on the controller
//   - [PoseRegister]: A position register holding Cartesian or joint data
//   - [ShiftRequest]: The register and frame IDs a tool-frame shift works on
//   - [CorrectionRecord]: A journaled tool-frame shift
//   - [Result]: The {success, message, error} reply handed back to the host
//
// # Design Principles
//
// Domain entities are:
//   - Value types, copied rather than shared
//   - Free of infrastructure dependencies
//   - Focused on business rules and invariants
package domain
