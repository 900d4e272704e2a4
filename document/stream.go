package document

import "modulemd/mderrors"

// ModuleStream is the abstract document type shared by StreamV1 and
// StreamV2: a release track within a module, identified by NSVC.
type ModuleStream interface {
	// Name returns the module name.
	Name() string
	// SetName sets the module name.
	SetName(string)
	// StreamName returns the stream name.
	StreamName() string
	// SetStreamName sets the stream name.
	SetStreamName(string)
	// Version returns the build version (0 means unset).
	Version() uint64
	// Context returns the build context, or "" if unset.
	Context() string

	// NSVC returns the stream's identity tuple.
	NSVC() NSVC
	// MDVersion returns the document schema version (1 or 2).
	MDVersion() uint64

	// Validate performs the cheap, local checks from §4: required
	// fields present, licenses non-empty, component rationale present,
	// and on v2 non-empty dependency module and stream names. The build
	// version is not range-checked. It does not verify cross-references.
	Validate() error
	// Copy returns a deep, independent copy.
	Copy() ModuleStream
	// Equal reports structural equality, including MDVersion.
	Equal(ModuleStream) bool
}

// validateCommon runs the checks shared by every ModuleStream version:
// required identity fields, summary/description, and non-empty module
// licenses.
func validateCommon(name, stream, summary, description string, licenses Licenses) error {
	if name == "" {
		return mderrors.New(mderrors.MissingRequiredField, "module name is required")
	}
	if stream == "" {
		return mderrors.New(mderrors.MissingRequiredField, "stream name is required")
	}
	if summary == "" {
		return mderrors.New(mderrors.MissingRequiredField, "summary is required")
	}
	if description == "" {
		return mderrors.New(mderrors.MissingRequiredField, "description is required")
	}
	if len(licenses.Module) == 0 {
		return mderrors.New(mderrors.MissingRequiredField, "module_licenses must be non-empty")
	}
	return nil
}

func validateComponentRationales(rpms ComponentRpmMap, modules ComponentModuleMap) error {
	for key, c := range rpms {
		if c.Rationale == "" {
			return mderrors.Newf(mderrors.MissingRequiredField, "rpm component %q is missing rationale", key)
		}
	}
	for key, c := range modules {
		if c.Rationale == "" {
			return mderrors.Newf(mderrors.MissingRequiredField, "module component %q is missing rationale", key)
		}
	}
	return nil
}
