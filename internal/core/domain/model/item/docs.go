// Package item contains the Item aggregate: a product or service listed by a
// store. Products track stock; services have unbounded availability.
package item
