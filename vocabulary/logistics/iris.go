package logistics

// Namespace is the base IRI prefix for the transport-domain ontology.
const Namespace = "https://ontolex.c360.dev/ontology/logistics/"

// EntityNamespace is the base IRI for transport-domain individuals.
const EntityNamespace = "https://ontolex.c360.dev/entity/logistics/"

// Class IRIs for the subclass forest. Each class names its parent;
// ClassObject is the root and has none.
const (
	// ClassObject is the top-level class of the domain.
	ClassObject = Namespace + "object"

	// ClassPhysObj is a tangible object.
	// Parent: ClassObject
	ClassPhysObj = Namespace + "physobj"

	// ClassPackage is a transportable container.
	// Parent: ClassPhysObj
	ClassPackage = Namespace + "package"

	// ClassDrum is a cylindrical package.
	// Parent: ClassPackage
	ClassDrum = Namespace + "drum"

	// ClassVehicle is a transport vehicle.
	// Parent: ClassPhysObj
	ClassVehicle = Namespace + "vehicle"

	// ClassTruck is a road vehicle.
	// Parent: ClassVehicle
	ClassTruck = Namespace + "truck"

	// ClassAirplane is an air vehicle.
	// Parent: ClassVehicle
	ClassAirplane = Namespace + "airplane"

	// ClassLocation is a place objects can be moved between.
	// Parent: ClassObject
	ClassLocation = Namespace + "location"

	// ClassCity is an urban location.
	// Parent: ClassLocation
	ClassCity = Namespace + "city"

	// ClassAirport is an air-transport location.
	// Parent: ClassLocation
	ClassAirport = Namespace + "airport"
)
