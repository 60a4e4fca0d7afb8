// Package technician models the field technicians who sign in from the mobile
// application and receive work orders.
package technician
