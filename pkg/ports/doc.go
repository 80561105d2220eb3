/*
Package ports defines the driven ports (interfaces) for gridwalk.

These interfaces decouple the core walk from the places grids come from.

# Key Interfaces

  - GridLoader: lists and retrieves named grid fixtures (memory, files).
  - RunGridLoaderContract: shared behaviour test for every GridLoader.
*/
package ports
