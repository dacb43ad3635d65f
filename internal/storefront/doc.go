// Package storefront holds the state of the fashion store: the immutable
// catalog, the search filter, the outfit composed on the mannequin, the cart
// and the theme flag. Every mutation is an explicit transition on State; the
// terminal UI only projects State into a view.
package storefront
