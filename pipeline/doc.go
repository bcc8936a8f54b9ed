/*
Package pipeline declares the message and cell contracts of a processing chain.

A chain is a sequence of Cells, each reading Msgs from the cell it is
connected to and writing them on. Blocking and non-blocking variants are both
part of the contract; the non-blocking ones report errors.ErrNotEnoughResources
instead of waiting.

The package carries no implementation. Applications register the head of
their active chain with the injector at startup:

	pipeline.SetHead(injector.Instance(), head)

	head, err := pipeline.Head(injector.Instance())
*/
package pipeline
