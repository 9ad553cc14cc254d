/*
go-camshift provides a hue based CamShift object tracker for Go.  A region
of a video frame is selected by the user, its hue distribution is modeled as
a histogram, and each following frame is back projected into a likelihood map
under that histogram so a mean shift search can relocate, resize and rotate
the search window onto the object.

The numerical work lives in the tracker and preprocess subpackages,
diagnostic drawing with GoCV in the render subpackage.  This package ties them
together into a per frame pipeline with runtime tunable parameters.

See example code and usage in the example subdirectory.
*/
package camshift
