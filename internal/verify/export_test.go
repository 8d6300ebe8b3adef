package verify

// ShapesSource exposes the shared fixture to the external test package.
const ShapesSource = shapesSource
