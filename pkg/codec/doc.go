/*
Package codec converts decision trees to and from their persisted forms.

Two formats are supported:

  - Binary: the compact, versioned format used by the stores.
  - YAML: a human-editable document used by export and import.

Binary layout:

	magic "AKNT" | version (1 byte) | node
	node := tag ('Q' or 'L') | uvarint length | content bytes | [yes node | no node]

Both decoders validate the resulting tree before returning it.
*/
package codec
