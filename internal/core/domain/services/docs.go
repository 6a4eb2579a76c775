// Package services provides domain services that hold business rules spanning
// more than one aggregate.
//
// The package includes:
//   - AdmissionPolicy: the pure checks that decide whether a new order is admitted
//     given the system settings and the current order counts
package services
