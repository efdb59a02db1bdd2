/*
Package pad loads, generates, and writes one-time-pad bit sequences.

Note that the pads produced here feed a visual XOR screen, NOT encryption.
A pad reused across messages, or derived from a weak passphrase, gives no
meaningful secrecy. This package exists so both sides of a toy exchange can
hold the same bit sequence.

# How it works:

A pad file is plain text with one record per line. Blank lines and lines
starting with '#' are ignored. A record is either a single bit value, or an
index followed by a bit value. Only the value matters, and it's coerced to a
boolean, so "0"/"1" and "true"/"false" both work. Consumers treat the pad as a
ring: after the last bit, consumption wraps back to the first.

Pads can be generated from the OS entropy pool with Generate or GenerateOffset,
or derived deterministically from a shared passphrase and salt with
FromPassphrase so that no pad file ever needs to travel.

# General guidelines:
  - A pad shorter than the message's pixel count repeats, which weakens an
    already weak scheme. Size the pad to the payload.
  - A random starting offset adds a little variety when a pad must be reused.
    The same offset is required to reverse the screen.
*/
package pad
